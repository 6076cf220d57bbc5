package sqlinline

// Idempotent grant: a repeat upsert returns the existing row untouched.
const QUpsertProAccess = `--sql 2b8e6d40-f3a1-4c97-85b0-6d92e4a7c158
insert into pro_access(id, event_id, user_id, granted_at)
values (gen_random_uuid(), $1::uuid, $2::text, now())
on conflict (user_id, event_id) do update set user_id = excluded.user_id
returning id, granted_at;
`

const QSelectProAccess = `--sql 71c4a9e3-05b8-4d26-9f71-e8306b5d2a94
select id, event_id, user_id, granted_at
from pro_access
where user_id = $1::text and event_id = $2::uuid;
`
